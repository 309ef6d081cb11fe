// Package sanitize redacts credentials, cookies, and auth tokens from a HAR document.
package sanitize

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Redacted overwrites sensitive values while keeping field presence and type.
const Redacted = "REDACTED"

// SensitiveKeys are the query-string parameter names that carry presigned-URL
// credentials for the storage backend. Matching is case-sensitive.
var SensitiveKeys = []string{
	"X-Amz-Credential",
	"X-Amz-Signature",
	"X-Amz-Security-Token",
}

// IsSensitiveKey reports whether name is one of SensitiveKeys.
func IsSensitiveKey(name string) bool {
	for _, k := range SensitiveKeys {
		if name == k {
			return true
		}
	}
	return false
}

var emptyArray = []byte("[]")

// Document redacts every entry of a HAR document and returns the result.
// Edits are applied by JSON path, so key order and every untouched byte of
// the input survive in the output. An entry missing a required HAR field
// fails the whole operation; no partial result is returned.
func Document(doc []byte) ([]byte, error) {
	entries := gjson.GetBytes(doc, "log.entries")
	if !entries.Exists() {
		return nil, fmt.Errorf("sanitize.Document: missing log.entries")
	}

	var err error
	total := len(entries.Array())
	for i := 0; i < total; i++ {
		doc, err = sanitizeEntry(doc, fmt.Sprintf("log.entries.%d", i))
		if err != nil {
			return nil, err
		}
	}
	return doc, nil
}

func sanitizeEntry(doc []byte, base string) ([]byte, error) {
	doc, err := sanitizeInitiator(doc, base)
	if err != nil {
		return nil, err
	}
	doc, err = sanitizeRequest(doc, base)
	if err != nil {
		return nil, err
	}
	return sanitizeResponse(doc, base)
}

// _initiator is a non-standard extension recording what triggered the
// request; its url can carry the same presigned credentials as the request
// url and is masked whenever it is present.
func sanitizeInitiator(doc []byte, base string) ([]byte, error) {
	u := gjson.GetBytes(doc, base+"._initiator.url")
	if !u.Exists() {
		return doc, nil
	}
	masked, err := MaskQueryString(u.String())
	if err != nil {
		return nil, fmt.Errorf("sanitize: %s._initiator.url: %w", base, err)
	}
	return sjson.SetBytes(doc, base+"._initiator.url", masked)
}

func sanitizeRequest(doc []byte, base string) ([]byte, error) {
	req := base + ".request"
	if !gjson.GetBytes(doc, req).Exists() {
		return nil, fmt.Errorf("sanitize: missing %s", req)
	}

	var err error
	if gjson.GetBytes(doc, req+".postData").Exists() {
		doc, err = sjson.SetBytes(doc, req+".postData.text", Redacted)
		if err != nil {
			return nil, err
		}
	}

	// Cookies are dropped outright rather than masked per-cookie.
	doc, err = sjson.SetRawBytes(doc, req+".cookies", emptyArray)
	if err != nil {
		return nil, err
	}

	headers := gjson.GetBytes(doc, req+".headers")
	if !headers.Exists() {
		return nil, fmt.Errorf("sanitize: missing %s.headers", req)
	}
	for i, h := range headers.Array() {
		if h.Get("name").String() != "Authorization" {
			continue
		}
		doc, err = sjson.SetBytes(doc, fmt.Sprintf("%s.headers.%d.value", req, i), Redacted)
		if err != nil {
			return nil, err
		}
	}

	qs := gjson.GetBytes(doc, req+".queryString")
	if !qs.Exists() {
		return nil, fmt.Errorf("sanitize: missing %s.queryString", req)
	}
	for i, p := range qs.Array() {
		if !IsSensitiveKey(p.Get("name").String()) {
			continue
		}
		doc, err = sjson.SetBytes(doc, fmt.Sprintf("%s.queryString.%d.value", req, i), Redacted)
		if err != nil {
			return nil, err
		}
	}

	u := gjson.GetBytes(doc, req+".url")
	if !u.Exists() {
		return nil, fmt.Errorf("sanitize: missing %s.url", req)
	}
	masked, err := MaskQueryString(u.String())
	if err != nil {
		return nil, fmt.Errorf("sanitize: %s.url: %w", req, err)
	}
	return sjson.SetBytes(doc, req+".url", masked)
}

func sanitizeResponse(doc []byte, base string) ([]byte, error) {
	resp := base + ".response"
	if !gjson.GetBytes(doc, resp).Exists() {
		return nil, fmt.Errorf("sanitize: missing %s", resp)
	}
	if !gjson.GetBytes(doc, resp+".content").Exists() {
		return nil, fmt.Errorf("sanitize: missing %s.content", resp)
	}

	// The whole body is treated as sensitive regardless of content type.
	doc, err := sjson.SetBytes(doc, resp+".content.text", Redacted)
	if err != nil {
		return nil, err
	}
	return sjson.SetRawBytes(doc, resp+".cookies", emptyArray)
}
