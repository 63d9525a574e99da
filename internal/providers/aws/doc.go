// Package aws implements the execrole provider backed by AWS.
//
// IAM serves roles and inline policies, STS resolves the caller identity,
// API Gateway lists REST APIs and Secrets Manager holds optional
// allow-lists. Each service is reached through a narrow interface so tests
// can substitute a fake or point the real client at an httptest server.
//
// Credentials follow the SDK default chain. When Settings.AssumeRole is set,
// the chain's credentials are exchanged for that role through STS before any
// other call is made.
package aws
