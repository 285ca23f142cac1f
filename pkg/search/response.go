package search

import "encoding/json"

// Response is the backend's native search envelope. Raw keeps the undecoded
// body so --json output can pass it through byte for byte.
type Response struct {
	Raw  []byte `json:"-"`
	Took int    `json:"took"`
	Hits struct {
		Total struct {
			Value int `json:"value"`
		} `json:"total"`
		Hits []Hit `json:"hits"`
	} `json:"hits"`
}

// Total returns the total number of documents matching the query, across all
// pages.
func (r *Response) Total() int {
	return r.Hits.Total.Value
}

// Hit is one matched document. Source stays raw because its shape depends on
// the index searched; use Package, Option or Flake to decode it.
type Hit struct {
	Score  float64         `json:"_score"`
	Source json.RawMessage `json:"_source"`
}

// Package decodes the hit as a package document.
func (h Hit) Package() (Package, error) {
	var p Package
	err := json.Unmarshal(h.Source, &p)
	return p, err
}

// Option decodes the hit as a NixOS option document.
func (h Hit) Option() (Option, error) {
	var o Option
	err := json.Unmarshal(h.Source, &o)
	return o, err
}

// Flake decodes the hit as a flake document.
func (h Hit) Flake() (Flake, error) {
	var f Flake
	err := json.Unmarshal(h.Source, &f)
	return f, err
}

// Package is the source document stored in the package indices.
type Package struct {
	AttrName        string       `json:"package_attr_name"`
	PName           string       `json:"package_pname"`
	Version         string       `json:"package_pversion"`
	Description     string       `json:"package_description"`
	LongDescription string       `json:"package_longDescription"`
	Programs        []string     `json:"package_programs"`
	Platforms       []string     `json:"package_platforms"`
	Homepage        StringList   `json:"package_homepage"`
	Licenses        []string     `json:"package_license_set"`
	Maintainers     []Maintainer `json:"package_maintainers"`
}

// Maintainer identifies a package maintainer. Either field may be empty.
type Maintainer struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Github string `json:"github"`
}

// DisplayName returns the best available identifier for the maintainer.
func (m Maintainer) DisplayName() string {
	if m.Name != "" {
		return m.Name
	}
	if m.Github != "" {
		return m.Github
	}
	return m.Email
}

// Option is the source document stored in the options indices.
type Option struct {
	Name        string `json:"option_name"`
	Type        string `json:"option_type"`
	Description string `json:"option_description"`
	Default     string `json:"option_default"`
	Example     string `json:"option_example"`
}

// Flake is the source document stored in the flakes index. Flake hits also
// carry package_* fields for the packages a flake exports, so Package decoding
// works on them too.
type Flake struct {
	Name        string      `json:"flake_name"`
	Description string      `json:"flake_description"`
	Resolved    FlakeSource `json:"flake_resolved"`
}

// FlakeSource points at where a flake is hosted.
type FlakeSource struct {
	Type  string `json:"type"`
	Owner string `json:"owner"`
	Repo  string `json:"repo"`
	URL   string `json:"url"`
}

// String renders the source as something a user can fetch from.
func (s FlakeSource) String() string {
	if s.URL != "" {
		return s.URL
	}
	if s.Owner != "" && s.Repo != "" {
		return s.Type + ":" + s.Owner + "/" + s.Repo
	}
	return ""
}

// StringList tolerates upstream fields that are sometimes a single string and
// sometimes an array of strings (package_homepage does both).
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	var one string
	if err := json.Unmarshal(data, &one); err == nil {
		*l = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*l = StringList(many)
	return nil
}
