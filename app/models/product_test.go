package models_test

import (
	"net/url"
	"reflect"
	"testing"

	"github.com/turboost/store/app/models"
)

func TestParseProductFormYears(t *testing.T) {
	form := url.Values{"ano": {"2001, abc, 2010"}}
	doc := models.ParseProductForm(form)

	years, ok := doc["ano"].([]int)
	if !ok {
		t.Fatalf("expected []int for ano, got %T", doc["ano"])
	}
	if !reflect.DeepEqual(years, []int{2001, 2010}) {
		t.Errorf("expected [2001 2010], got %v", years)
	}
}

func TestParseProductFormYearsAbsent(t *testing.T) {
	doc := models.ParseProductForm(url.Values{})

	years, ok := doc["ano"].([]int)
	if !ok {
		t.Fatalf("expected []int for ano, got %T", doc["ano"])
	}
	if len(years) != 0 {
		t.Errorf("expected empty years, got %v", years)
	}
}

func TestParseProductFormNumerics(t *testing.T) {
	form := url.Values{
		"preco": {"1299.90"},
		"peso":  {"not-a-number"},
	}
	doc := models.ParseProductForm(form)

	if doc["preco"] != 1299.90 {
		t.Errorf("expected preco 1299.90, got %v", doc["preco"])
	}
	if doc["peso"] != 0.0 {
		t.Errorf("expected unparseable peso to be 0, got %v", doc["peso"])
	}
	// Absent numerics stay out of the document so updates merge cleanly.
	if _, ok := doc["altura"]; ok {
		t.Error("expected absent altura to be omitted")
	}
}

func TestParseProductFormFeaturedCheckbox(t *testing.T) {
	doc := models.ParseProductForm(url.Values{"isFeatured": {"on"}})
	if doc["isFeatured"] != true {
		t.Error("expected isFeatured 'on' to be true")
	}

	// Only the checkbox token counts; "true" comes from a script, not the form.
	doc = models.ParseProductForm(url.Values{"isFeatured": {"true"}})
	if doc["isFeatured"] != false {
		t.Error("expected isFeatured 'true' to be false")
	}

	doc = models.ParseProductForm(url.Values{})
	if doc["isFeatured"] != false {
		t.Error("expected absent isFeatured to be false")
	}
}

func TestParseProductFormStringsPassThrough(t *testing.T) {
	form := url.Values{
		"nome":      {"Escape Esportivo"},
		"categoria": {"escapes"},
	}
	doc := models.ParseProductForm(form)

	if doc["nome"] != "Escape Esportivo" {
		t.Errorf("expected nome to pass through, got %v", doc["nome"])
	}
	if doc["categoria"] != "escapes" {
		t.Errorf("expected categoria to pass through, got %v", doc["categoria"])
	}
}

func TestApplyCreateDefaults(t *testing.T) {
	doc := models.ApplyCreateDefaults(models.ParseProductForm(url.Values{
		"nome": {"Escape Esportivo"},
	}))

	for _, key := range []string{"preco", "peso", "comprimento", "altura", "largura"} {
		if doc[key] != 0.0 {
			t.Errorf("expected %s default 0, got %v", key, doc[key])
		}
	}
	if doc["isFeatured"] != false {
		t.Errorf("expected isFeatured default false, got %v", doc["isFeatured"])
	}
}

func TestApplyCreateDefaultsKeepsSubmitted(t *testing.T) {
	doc := models.ApplyCreateDefaults(models.ParseProductForm(url.Values{
		"preco": {"450.00"},
	}))
	if doc["preco"] != 450.0 {
		t.Errorf("expected submitted preco to survive defaults, got %v", doc["preco"])
	}
}
