package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// DestinationTypeCohort is the destination type of cohort records.
const DestinationTypeCohort = "COHORT"

// ID is an upstream identifier. The upstream API emits ids as JSON numbers,
// callers use them as opaque strings. An empty ID encodes as null.
type ID string

// MarshalJSON implements json.Marshaler.
func (id ID) MarshalJSON() ([]byte, error) {
	if id == "" {
		return jsonNull, nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON implements json.Unmarshaler. Strings and numbers are accepted.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, jsonNull) {
		*id = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// CohortDefinition is the "cohort" object of a destination.
type CohortDefinition struct {
	ID   ID
	Node Node
}

// MarshalJSON implements json.Marshaler.
func (c CohortDefinition) MarshalJSON() ([]byte, error) {
	head, err := json.Marshal(struct {
		ID ID `json:"id"`
	}{ID: c.ID})
	if err != nil {
		return nil, err
	}
	node, err := MarshalNode(c.Node)
	if err != nil {
		return nil, err
	}
	return AppendMember(head, "node", node)
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CohortDefinition) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	def, err := decodeCohortDefinition(dec)
	if err != nil {
		return fmt.Errorf("failed to decode cohort definition: %w", err)
	}
	if def != nil {
		*c = *def
	}
	return nil
}

func decodeCohortDefinition(dec *json.Decoder) (*CohortDefinition, error) {
	open, err := openObject(dec)
	if err != nil || !open {
		return nil, err
	}

	c := &CohortDefinition{}
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return nil, err
		}
		switch key {
		case "id":
			err = dec.Decode(&c.ID)
		case "node":
			c.Node, err = decodeNode(dec)
		default:
			err = skipValue(dec)
		}
		if err != nil {
			return nil, err
		}
	}
	return c, expectDelim(dec, '}')
}

// Destination is the upstream record a cohort is persisted as.
// Fields other than Cohort are pass-through metadata.
type Destination struct {
	ID              ID                `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Type            string            `json:"type"`
	OwnerUserID     *int64            `json:"ownerUserId"`
	PhenotypeFields json.RawMessage   `json:"phenotypeFields"`
	Cohort          *CohortDefinition `json:"cohort"`
	Read            bool              `json:"read"`
	Write           bool              `json:"write"`
	Execute         bool              `json:"execute"`
	CreatedAt       json.RawMessage   `json:"created_at"`
	UpdatedAt       json.RawMessage   `json:"updated_at"`
	Links           json.RawMessage   `json:"links"`
}

type destinationFields Destination

// EncodeJSON returns the wire encoding of d. The cohort tree is written by
// AppendNode, so the result is not bound by encoder nesting limits.
func (d Destination) EncodeJSON() ([]byte, error) {
	head, err := json.Marshal(struct {
		*destinationFields
		Cohort *struct{} `json:"cohort,omitempty"`
	}{destinationFields: (*destinationFields)(&d)})
	if err != nil {
		return nil, err
	}

	cohort := jsonNull
	if d.Cohort != nil {
		if cohort, err = d.Cohort.MarshalJSON(); err != nil {
			return nil, err
		}
	}
	return AppendMember(head, "cohort", cohort)
}

// MarshalJSON implements json.Marshaler.
func (d Destination) MarshalJSON() ([]byte, error) {
	return d.EncodeJSON()
}

// DecodeJSON reads a single destination from r.
func (d *Destination) DecodeJSON(r io.Reader) error {
	dec := json.NewDecoder(r)
	if err := d.decode(dec); err != nil {
		return fmt.Errorf("failed to decode destination: %w", err)
	}
	return expectEOF(dec)
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Destination) UnmarshalJSON(data []byte) error {
	return d.DecodeJSON(bytes.NewReader(data))
}

// decode streams the cohort field through decodeCohortDefinition. The other
// fields are shallow and go through the regular decoder.
func (d *Destination) decode(dec *json.Decoder) error {
	open, err := openObject(dec)
	if err != nil || !open {
		return err
	}

	rest := make(map[string]json.RawMessage)
	var cohort *CohortDefinition
	for dec.More() {
		key, err := objectKey(dec)
		if err != nil {
			return err
		}
		if key == "cohort" {
			if cohort, err = decodeCohortDefinition(dec); err != nil {
				return err
			}
			continue
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return err
		}
		rest[key] = raw
	}
	if err := expectDelim(dec, '}'); err != nil {
		return err
	}

	fields, err := json.Marshal(rest)
	if err != nil {
		return err
	}
	var w destinationFields
	if err := json.Unmarshal(fields, &w); err != nil {
		return err
	}
	*d = Destination(w)
	d.Cohort = cohort
	return nil
}

// Destinations is a list of destinations.
type Destinations []Destination

// DecodeJSON reads a JSON array of destinations from r.
func (ds *Destinations) DecodeJSON(r io.Reader) error {
	dec := json.NewDecoder(r)
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("failed to decode destinations: %w", err)
	}
	if tok == nil {
		*ds = nil
		return expectEOF(dec)
	}
	if tok != json.Delim('[') {
		return fmt.Errorf("failed to decode destinations: expected array, got %v", tok)
	}

	out := make(Destinations, 0)
	for dec.More() {
		var d Destination
		if err := d.decode(dec); err != nil {
			return fmt.Errorf("failed to decode destination %d: %w", len(out), err)
		}
		out = append(out, d)
	}
	if err := expectDelim(dec, ']'); err != nil {
		return fmt.Errorf("failed to decode destinations: %w", err)
	}
	*ds = out
	return expectEOF(dec)
}

// Root returns the expression root of the destination, nil when absent.
func (d *Destination) Root() Node {
	if d == nil || d.Cohort == nil {
		return nil
	}
	return d.Cohort.Node
}

// Cohort is a named set of members combined by OR.
type Cohort struct {
	ID          string
	Name        string
	Description string
	OwnerUserID *int64
	Root        Node
}

// CohortFromDestination converts an upstream destination into a Cohort.
func CohortFromDestination(d *Destination) *Cohort {
	return &Cohort{
		ID:          string(d.ID),
		Name:        d.Name,
		Description: d.Description,
		OwnerUserID: d.OwnerUserID,
		Root:        d.Root(),
	}
}

// CohortSummary is a lightweight version of Cohort for lists.
type CohortSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerUserID *int64 `json:"owner_user_id"`
}

// CohortInput carries what is needed to create or replace a cohort.
// ID is ignored on create.
type CohortInput struct {
	ID          string
	Name        string
	Description string
	OwnerUserID *int64
	Members     []Member
}

// ConceptSummary is the summarized form of a concept or phenotype.
type ConceptSummary struct {
	Key               string `json:"key"`
	DisplayName       string `json:"displayName"`
	AbbrevDisplayName string `json:"abbrevDisplayName,omitempty"`
	Type              string `json:"type,omitempty"`
	InDataSource      bool   `json:"inDataSource"`
	Parent            bool   `json:"isParent"`
}

// TreeNode is a concept as returned by the batched concept lookup.
type TreeNode struct {
	Key         string  `json:"key"`
	DisplayName string  `json:"displayName"`
	Type        *string `json:"type"`
}

// Phenotype is a user-defined phenotype.
type Phenotype struct {
	ID          ID      `json:"id"`
	Key         string  `json:"key"`
	DisplayName string  `json:"displayName"`
	Description string  `json:"description,omitempty"`
	Type        *string `json:"type"`
	UserID      *int64  `json:"userId,omitempty"`
}

// FormatOwner renders an owner id for logs.
func FormatOwner(owner *int64) string {
	if owner == nil {
		return "none"
	}
	return strconv.FormatInt(*owner, 10)
}
