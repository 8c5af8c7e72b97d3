// Package proto holds the generated AuthService contract. Regenerate with
// `buf generate` from the repository root; the source lives in
// api/gophauth/v1/auth.proto.
package proto
