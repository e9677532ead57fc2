package util

// DateFormat is the YYYY-MM-DD layout used in export filenames and
// CSV date columns.
const DateFormat = "2006-01-02"

const (
	StorageLocal = "local"
	StorageMinio = "minio"
	StorageOSS   = "oss"
)

// MimeImage matches any image/* content type.
const MimeImage = "image/"

// MaxUploadSize caps answer attachments at 10MB.
const MaxUploadSize = 10 << 20

// PassingPercentage is the threshold used for passing-rate statistics.
const PassingPercentage = 70
