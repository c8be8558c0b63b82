package ofxparser

import (
	"regexp"
	"strings"

	"fjacquet/ofx-csv/internal/models"
)

// xmlHeaderAttr matches one attribute of an XML-dialect OFX declaration,
// e.g. OFXHEADER="200" inside <?OFX OFXHEADER="200" VERSION="211" ... ?>.
var xmlHeaderAttr = regexp.MustCompile(`(\w+)="([^"]*)"`)

// parseHeader reads the header block preceding the <OFX> root. Two dialects
// exist: SGML statements use one KEY:VALUE pair per line, XML statements
// carry the pairs as attributes of a <?OFX ... ?> processing instruction.
// Field order and duplicates are preserved.
func parseHeader(text string) models.Header {
	var header models.Header

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "<?") {
			if !strings.HasPrefix(strings.ToUpper(line), "<?OFX") {
				// Usually the <?xml ...?> prolog; it carries nothing
				// the document model needs.
				continue
			}
			for _, m := range xmlHeaderAttr.FindAllStringSubmatch(line, -1) {
				header = append(header, models.HeaderField{Key: m[1], Value: m[2]})
			}
			continue
		}

		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		header = append(header, models.HeaderField{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
	}

	return header
}
