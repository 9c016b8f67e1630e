package gazelle

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"mime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Encoder encodes values to a wire format.
type Encoder interface {
	ContentType() string
	Encode(w io.Writer, v any) error
}

// Decoder decodes request bodies from a wire format.
type Decoder interface {
	ContentType() string
	Decode(r io.Reader, v any) error
}

// JSONCodec implements Encoder and Decoder for JSON.
type JSONCodec struct{}

// ContentType returns "application/json".
func (JSONCodec) ContentType() string { return "application/json" }

// Encode writes v as JSON.
func (JSONCodec) Encode(w io.Writer, v any) error {
	return json.NewEncoder(w).Encode(v)
}

// Decode reads JSON into v. An empty body is not an error.
func (JSONCodec) Decode(r io.Reader, v any) error {
	err := json.NewDecoder(r).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// XMLCodec implements Encoder and Decoder for XML.
type XMLCodec struct{}

// ContentType returns "application/xml".
func (XMLCodec) ContentType() string { return "application/xml" }

// Encode writes v as XML, prefixed with the standard XML header.
func (XMLCodec) Encode(w io.Writer, v any) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	return xml.NewEncoder(w).Encode(v)
}

// Decode reads XML into v. An empty body is not an error.
func (XMLCodec) Decode(r io.Reader, v any) error {
	err := xml.NewDecoder(r).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// YAMLCodec implements Encoder and Decoder for YAML.
type YAMLCodec struct{}

// ContentType returns "application/yaml".
func (YAMLCodec) ContentType() string { return "application/yaml" }

// Encode writes v as YAML.
func (YAMLCodec) Encode(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// Decode reads YAML into v. An empty body is not an error.
func (YAMLCodec) Decode(r io.Reader, v any) error {
	err := yaml.NewDecoder(r).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// defaultEncoders is the negotiation order: JSON first (the default for
// empty or wildcard Accept values), then XML, then YAML.
var defaultEncoders = []Encoder{JSONCodec{}, XMLCodec{}, YAMLCodec{}}

// negotiateEncoder picks an encoder based on the Accept header value.
// Returns (JSON, true) for empty or */* accept values and (nil, false)
// when an explicit Accept has no match.
func negotiateEncoder(accept string, encoders []Encoder) (Encoder, bool) {
	if accept == "" {
		return encoders[0], true
	}

	type candidate struct {
		encoder Encoder
		quality float64
	}

	var best candidate
	best.quality = -1

	for part := range strings.SplitSeq(accept, ",") {
		mediaType, params, err := mime.ParseMediaType(strings.TrimSpace(part))
		if err != nil {
			continue
		}

		q := 1.0
		if qs, ok := params["q"]; ok {
			if parsed, err := strconv.ParseFloat(qs, 64); err == nil {
				q = parsed
			}
		}

		if q <= best.quality || q <= 0 {
			continue
		}

		if mediaType == "*/*" {
			best = candidate{encoder: encoders[0], quality: q}
			continue
		}

		for _, enc := range encoders {
			if mediaRangeMatches(mediaType, enc.ContentType()) {
				best = candidate{encoder: enc, quality: q}
				break
			}
		}
	}

	if best.encoder == nil {
		return nil, false
	}
	return best.encoder, true
}

// mediaRangeMatches reports whether an Accept media range covers a
// concrete media type, honoring */* and type/* wildcards.
func mediaRangeMatches(mediaRange, mediaType string) bool {
	if mediaRange == "*/*" {
		return true
	}
	if prefix, ok := strings.CutSuffix(mediaRange, "/*"); ok {
		return strings.HasPrefix(mediaType, prefix+"/")
	}
	return mediaRange == mediaType
}
