package domain

import (
	"encoding/base64"
	"encoding/json"
	"strings"
)

type ImageKind int

const (
	ImageInline ImageKind = iota // data: URL，内联字节
	ImageURL                     // 外链
)

// ImageRef 区分内联图片与外链，序列化仍是旧契约的单个字符串
type ImageRef struct {
	Kind ImageKind
	Data string
}

func InlineImage(mimeType string, raw []byte) *ImageRef {
	return &ImageRef{
		Kind: ImageInline,
		Data: "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(raw),
	}
}

func ImageFromString(s string) *ImageRef {
	if s == "" {
		return nil
	}
	k := ImageURL
	if strings.HasPrefix(s, "data:") {
		k = ImageInline
	}
	return &ImageRef{Kind: k, Data: s}
}

func (r ImageRef) String() string { return r.Data }

func (r ImageRef) MarshalJSON() ([]byte, error) { return json.Marshal(r.Data) }

func (r *ImageRef) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if v := ImageFromString(s); v != nil {
		*r = *v
	}
	return nil
}
