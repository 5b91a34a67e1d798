// Package validation contains the logic for validating
// request data.
//
// It enforces the contact-form field rules in a fixed order and
// binds request bodies into payload structs, turning malformed input
// into errors the client can understand.
package validation
