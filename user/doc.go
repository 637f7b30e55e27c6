/*
Package user provides the fixed user directory served by the mock API.

The directory holds two records (ids 1 and 2). Lookup returns the record and
true for those ids and the zero Record and false for every other id. A false
result is the absence signal, not an error: Lookup never fails.
*/
package user
