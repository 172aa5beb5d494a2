package main

import "embed"

// gameFS holds the default configs, message files and assets
//
//go:embed configs locales assets
var gameFS embed.FS
