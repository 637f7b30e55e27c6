/*
Package mock provides programmable stand-ins for the mock API client.

Client implements apiclient.Client without a host. Calls nobody configured
fall through to the real dispatcher and user directory, so a fresh Client
behaves like the real API. Tests then override what they care about:

	m := mock.New(mock.Config{})
	m.On("/example").Return(dispatch.Failure("nope", 400))
	m.On("/slow").ReturnError(mock.ErrTimeout)
	m.OnUser(7).Return(user.Record{ID: 7, Username: "seven"})
	m.OnUser(1).ReturnAbsent()

Preset faults

Timeout, ServerError, NotFound and InternalServerError return a Client whose
every call fails with the matching sentinel error. Use them to check that
callers handle transport failures, independent of the dispatch logic.

Stubs

Stub stands in for any single function: it returns a preset value or a preset
error and counts invocations.

	s := mock.Success()          // returns true
	s = mock.Failing[bool](mock.ErrServer)

Inspecting calls

Every operation is appended to Client.Calls.
*/
package mock
