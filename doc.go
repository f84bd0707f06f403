// Package main provides the entry point for the Gofolio application.
// It initializes and runs a web server using the Fiber framework that serves
// a personal portfolio site (home, about, skills, projects, certificates,
// blog, contact, resume) and a paired admin interface for managing that
// content. The application uses gorm for data persistence and includes file
// storage for images and resume documents plus an outbound contact-email
// integration.
package main
