package main

var (
	buildTime    = "unknown"
	buildVersion = "dev"
)
