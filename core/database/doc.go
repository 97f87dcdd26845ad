// Package database manages the relational store connection.
//
// It wraps GORM with driver selection (MySQL for deployments, SQLite for
// local use and tests), connection pooling, and startup ping verification.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal(err)
//	}
package database
