// Package clientip resolves the client address of HTTP requests.
//
// Only deploy behind a proxy that overwrites X-Forwarded-For and X-Real-IP;
// otherwise clients can choose their own address.
package clientip
