// Package binder fills request structs from HTTP requests.
//
//   - Query binds URL query parameters (`query` tag, falling back to `form`).
//   - Form binds urlencoded and multipart bodies (`form` tag) and reports
//     ErrBinderNotApplicable for body-less methods.
//   - JSON decodes application/json bodies strictly.
//
// Nested structs map to dotted parameter names, which lets HTML forms post
// grouped inputs such as "birthDate.month". String values are never trimmed
// or otherwise rewritten.
//
// Every error wraps one of the package sentinels so the HTTP error handler can
// map it to a status code with errors.Is.
package binder
