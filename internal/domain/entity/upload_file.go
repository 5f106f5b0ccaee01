package entity

// UploadSlot tags a staged multipart file with the semantic slot it fills
// on the journal entry. The slot decides which remote folder the binary is
// uploaded to during reconciliation.
type UploadSlot string

const (
	SlotThumbnail UploadSlot = "thumbnail"
	SlotSnapshot  UploadSlot = "snapshot"
	SlotContent   UploadSlot = "content"
)

// UploadFile is a binary staged on local disk by the multipart middleware,
// waiting to be pushed to the remote asset store. Staged files are always
// removed after the submit workflow returns, whatever its outcome.
type UploadFile struct {
	Slot      UploadSlot
	LocalPath string
	MimeType  string
	Size      int64
}
