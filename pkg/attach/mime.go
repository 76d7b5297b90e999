package attach

import (
	"net/http"
	"path/filepath"
	"strings"
)

// mimeOctetStream is the fallback content type for unrecognized files.
const mimeOctetStream = "application/octet-stream"

// extensionTypes maps common office and translation-industry file
// extensions that content sniffing cannot distinguish (most are zip
// containers or plain text underneath).
var extensionTypes = map[string]string{
	".pdf":      "application/pdf",
	".doc":      "application/msword",
	".docx":     "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":      "application/vnd.ms-excel",
	".xlsx":     "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".ppt":      "application/vnd.ms-powerpoint",
	".pptx":     "application/vnd.openxmlformats-officedocument.presentationml.presentation",
	".odt":      "application/vnd.oasis.opendocument.text",
	".rtf":      "application/rtf",
	".txt":      "text/plain; charset=utf-8",
	".csv":      "text/csv",
	".xliff":    "application/xliff+xml",
	".xlf":      "application/xliff+xml",
	".tmx":      "application/x-tmx+xml",
	".sdlxliff": "application/xliff+xml",
}

// ContentType determines the MIME type of a staged file, preferring the
// extension map for container formats and falling back to content
// sniffing over the first 512 bytes.
func ContentType(f StagedFile) string {
	if ct, ok := extensionTypes[strings.ToLower(filepath.Ext(f.Name))]; ok {
		return ct
	}

	if len(f.Content) == 0 {
		return mimeOctetStream
	}
	head := f.Content
	if len(head) > 512 {
		head = head[:512]
	}
	return http.DetectContentType(head)
}
