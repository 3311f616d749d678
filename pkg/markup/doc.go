// Package markup applies text transforms to the prose of a markdown document
// while leaving its markup untouched.
package markup
