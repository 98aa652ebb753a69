// Command mediaclean scans messy TV episode download trees, identifies
// season and episode numbers, and organizes the files into a
// Plex-compatible library layout.
package main
