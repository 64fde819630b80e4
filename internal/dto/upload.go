package dto

// UploadFile is a file staged in memory by the upload handler.
type UploadFile struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

type NewSubmission struct {
	Name           string
	SocialHandle   string
	SocialPlatform string
	Files          []UploadFile
}
