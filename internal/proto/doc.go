// Package proto contains the gRPC API definition for the BioVault
// biometric authentication service and its generated bindings.
//
//go:generate protoc -I ../.. --go_out=../.. --go_opt=paths=source_relative --go-grpc_out=../.. --go-grpc_opt=paths=source_relative internal/proto/biometric.proto
package proto
