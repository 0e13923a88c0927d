// Package docimport turns a PDF report from another tracking app into a
// partial dataset by way of a document-understanding model. The model is an
// untrusted producer: its output enters the store exactly like any other
// import, through the merge engine, and a non-conforming response is
// surfaced as an error with nothing applied.
package docimport

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/HunterBartelt/TinyTracker/internal/common"
	"github.com/HunterBartelt/TinyTracker/internal/logging"
	"github.com/HunterBartelt/TinyTracker/internal/models"
)

// extractionPrompt instructs the model to emit the three supported arrays
// with volumes pre-converted to milliliters and all times as epoch
// milliseconds.
const extractionPrompt = `I am uploading a PDF report from a baby tracking app.
Please extract all feeding, diaper, and sleep records you can find.

CRITICAL Rules:
1. Convert all volumes to milliliters (ml). If you see ounces (oz), multiply by 29.57.
2. Dates and Times: Convert ALL dates and times to Unix Timestamps in MILLISECONDS (e.g., 1700000000000).
3. If a record is from "Yesterday", calculate the timestamp based on the current date provided in the PDF header.
4. Return a JSON object with three arrays: "feedings", "diapers", and "sleep".

Data structure:
- Feedings: type (bottle/nursing), timestamp (number, ms), amountMl (number, for bottles), leftMinutes/rightMinutes (number, for nursing).
- Diapers: type (wet/dirty/mixed), timestamp (number, ms).
- Sleep: startTime (number, ms), endTime (number, ms, if available).`

// Model is the document-understanding call itself. It takes the extraction
// prompt plus raw PDF bytes and returns the model's JSON text.
type Model interface {
	GenerateJSON(ctx context.Context, prompt string, pdf []byte) (string, error)
}

// Importer validates model output into a dataset the merge engine accepts.
type Importer struct {
	model Model
	log   logging.Logger
}

func New(model Model, log logging.Logger) *Importer {
	return &Importer{model: model, log: log}
}

// ParsePDF extracts feedings, diapers, and sleep records from a PDF report.
// Service failures surface as common.ErrDocServiceUnavailable, responses
// that do not parse as common.ErrMalformedDocResponse; in both cases the
// returned dataset is empty and nothing has been applied anywhere.
func (im *Importer) ParsePDF(ctx context.Context, pdf []byte) (models.Dataset, error) {
	out, err := im.model.GenerateJSON(ctx, extractionPrompt, pdf)
	if err != nil {
		im.log.Warn(ctx, "document import failed", "error", err)
		return models.Dataset{}, err
	}

	var ds models.Dataset
	if err := json.Unmarshal([]byte(out), &ds); err != nil {
		return models.Dataset{}, fmt.Errorf("%w: %v", common.ErrMalformedDocResponse, err)
	}

	// The service contract covers three arrays only; anything else in the
	// response is discarded.
	return models.Dataset{
		Feedings: ds.Feedings,
		Diapers:  ds.Diapers,
		Sleep:    ds.Sleep,
	}, nil
}
