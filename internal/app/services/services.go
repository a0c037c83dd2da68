// Package services holds the application workflows:
// AuthService (login, token verification, users listing and reset) and
// EnrollmentService (enrollment listing, reset, student lookup, add and drop).
package services
