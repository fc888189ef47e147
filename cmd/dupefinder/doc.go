// Command dupefinder scans movie collections for duplicate files and
// reports on what it finds.
package main
