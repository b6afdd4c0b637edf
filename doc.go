// Package main provides the entry point for the portfolio content
// management application. It initializes and runs a web server using the
// Fiber framework that serves a public portfolio page, a contact form and
// a password-protected admin panel for editing the profile, skills,
// projects and hobbies. The application uses gorm for data persistence
// and server-side sessions for admin authentication.
package main
