/*
Package arith holds the small arithmetic helpers used in the test-driven
development exercises.

Add and Multiply are generic over the built-in numeric types and cannot fail.
Calculator accepts untyped operands, such as values decoded from a JSON
payload, rejects anything that is not an integer or float with
ErrInvalidOperand, and logs each call through a logging.Client.
*/
package arith
