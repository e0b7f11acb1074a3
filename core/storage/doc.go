// Package storage wraps the S3-compatible object store holding campaign
// media (images, logos) that sheet rows reference by object path instead of
// by public URL.
package storage
