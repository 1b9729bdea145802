package service

// PictureProcessor normalizes uploaded profile pictures before they are stored.
type PictureProcessor interface {
	// Process checks the file extension, decodes the image and scales it to fit the configured bounds.
	Process(filename string, data []byte) ([]byte, error)
}
