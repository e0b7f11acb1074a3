// Package media retrieves and inspects creative asset content referenced by
// sheet cells: raw bytes from HTTP URLs or from the media bucket, image
// orientation classification, and YouTube video-id extraction.
package media
