package constants

// ExporterKind is used for the Telemetry package
type ExporterKind string

const (
	Datadog ExporterKind = "datadog"
)

// Encoding is the character encoding of the source file.
type Encoding string

const (
	UTF8        Encoding = "utf-8"
	UTF16       Encoding = "utf-16"
	Latin1      Encoding = "latin1"
	ISO88591    Encoding = "iso-8859-1"
	Windows1252 Encoding = "windows-1252"
)

var validEncodings = []Encoding{UTF8, UTF16, Latin1, ISO88591, Windows1252}

func IsValidEncoding(encoding Encoding) bool {
	for _, validEncoding := range validEncodings {
		if encoding == validEncoding {
			return true
		}
	}

	return false
}

const (
	// NullMarker is written in place of empty source fields when staging rows for a load job.
	NullMarker = `\N`
	// JobIDPrefix is prepended to every load job ID so that jobs created by this tool are easy to find.
	JobIDPrefix = "ingest"
)
