package store

import _ "embed"

//go:embed schema.sql
var Schema string

type Bucket string

const (
	BucketMandatory Bucket = "mandatory"
	BucketElective  Bucket = "elective"
)
