package models

import (
	"net/url"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Wire field names are the Portuguese names the storefront submits and
// renders; they are part of the external contract, not a style choice.

// Product is a catalogue entry. Media fields hold public object-store
// URLs; up to three images and three engine-sound recordings per product.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"            json:"id"`
	Nome        string             `bson:"nome,omitempty"           json:"nome,omitempty"`
	Descricao   string             `bson:"descricao,omitempty"      json:"descricao,omitempty"`
	Categoria   string             `bson:"categoria,omitempty"      json:"categoria,omitempty"`
	Preco       float64            `bson:"preco"                    json:"preco"`
	Peso        float64            `bson:"peso"                     json:"peso"`
	Comprimento float64            `bson:"comprimento"              json:"comprimento"`
	Altura      float64            `bson:"altura"                   json:"altura"`
	Largura     float64            `bson:"largura"                  json:"largura"`
	Ano         []int              `bson:"ano"                      json:"ano"`
	IsFeatured  bool               `bson:"isFeatured"               json:"isFeatured"`
	ImagemURL1  string             `bson:"imagemURL1,omitempty"     json:"imagemURL1,omitempty"`
	ImagemURL2  string             `bson:"imagemURL2,omitempty"     json:"imagemURL2,omitempty"`
	ImagemURL3  string             `bson:"imagemURL3,omitempty"     json:"imagemURL3,omitempty"`
	SomOriginal string             `bson:"somOriginal,omitempty"    json:"somOriginal,omitempty"`
	SomLenta    string             `bson:"somLenta,omitempty"       json:"somLenta,omitempty"`
	SomAcelera  string             `bson:"somAcelerando,omitempty"  json:"somAcelerando,omitempty"`
}

// ImageFields are the multipart file slots for product photos.
var ImageFields = []string{"imagemURL1", "imagemURL2", "imagemURL3"}

// SoundFields are the multipart file slots for engine-sound recordings.
var SoundFields = []string{"somOriginal", "somLenta", "somAcelerando"}

// numericFields are parsed as decimals; anything unparseable becomes 0.
var numericFields = []string{"preco", "peso", "comprimento", "altura", "largura"}

// ParseProductForm normalizes a multipart form into a partial document
// suitable for a $set merge:
//
//   - "ano" is split on commas; tokens that are not integers are dropped
//     silently, valid ones keep their original order; absent → empty list
//   - numeric fields present in the form parse as float64, 0 on failure
//   - "isFeatured" is true only when the raw value is exactly "on"
//     (the checkbox-checked token); anything else, including "true", is false
//   - every other field is carried through as its first string value
//
// File slots never come through url.Values, so media URLs are untouched
// here; the controllers set them after uploading.
func ParseProductForm(form url.Values) bson.M {
	doc := bson.M{}

	for key, vals := range form {
		if len(vals) == 0 {
			continue
		}
		doc[key] = vals[0]
	}

	doc["ano"] = parseYears(form.Get("ano"))
	doc["isFeatured"] = form.Get("isFeatured") == "on"

	for _, key := range numericFields {
		if !form.Has(key) {
			continue
		}
		doc[key] = parseDecimal(form.Get(key))
	}

	return doc
}

// ApplyCreateDefaults fills the fields a freshly created product must
// always carry, so a request missing "preco" still stores 0.
func ApplyCreateDefaults(doc bson.M) bson.M {
	for _, key := range numericFields {
		if _, ok := doc[key]; !ok {
			doc[key] = 0.0
		}
	}
	if _, ok := doc["ano"]; !ok {
		doc["ano"] = []int{}
	}
	if _, ok := doc["isFeatured"]; !ok {
		doc["isFeatured"] = false
	}
	return doc
}

func parseYears(raw string) []int {
	years := []int{}
	if strings.TrimSpace(raw) == "" {
		return years
	}
	for _, token := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(token))
		if err != nil {
			continue
		}
		years = append(years, n)
	}
	return years
}

func parseDecimal(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return f
}
