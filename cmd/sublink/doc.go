// Package main hosts the sublink CLI entrypoint and command graph.
//
// The root command takes one or more directories and links the external
// subtitles it finds next to the videos, named the way Jellyfin and similar
// servers discover them. Subcommands inspect the link history, remove links
// sublink created, and scaffold configuration.
//
// Keep this package lean: behaviour lives in internal/workflow and friends;
// commands here only resolve configuration, logging, and output format.
package main
