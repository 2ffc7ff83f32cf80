package mart

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Adapter fetches transcript sequences from an Ensembl-style REST endpoint.
type Adapter struct {
	baseURL    string
	httpClient *http.Client
}

// NewAdapter creates an adapter for the given reference genome.
// Returns an error for unknown reference keys.
func NewAdapter(reference string) (*Adapter, error) {
	baseURL, err := Resolve(reference)
	if err != nil {
		return nil, err
	}
	return NewAdapterWithEndpoint(baseURL), nil
}

// NewAdapterWithEndpoint creates an adapter against an explicit endpoint URL.
func NewAdapterWithEndpoint(baseURL string) *Adapter {
	return &Adapter{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch retrieves the CDS and protein sequence for a transcript.
func (a *Adapter) Fetch(ctx context.Context, transcriptID string) (*Sequence, error) {
	cds, err := a.fetchSequence(ctx, transcriptID, "cds")
	if err != nil {
		return nil, fmt.Errorf("fetch cds for %s: %w", transcriptID, err)
	}

	protein, err := a.fetchSequence(ctx, transcriptID, "protein")
	if err != nil {
		return nil, fmt.Errorf("fetch protein for %s: %w", transcriptID, err)
	}

	return &Sequence{
		TranscriptID: transcriptID,
		CDS:          cds,
		Protein:      protein,
	}, nil
}

// fetchSequence queries the sequence endpoint for one sequence type.
func (a *Adapter) fetchSequence(ctx context.Context, id, seqType string) (string, error) {
	url := fmt.Sprintf("%s/sequence/id/%s?type=%s;content-type=application/json",
		a.baseURL, id, seqType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("sequence request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("sequence endpoint error %d: %s", resp.StatusCode, string(body))
	}

	var seqResp struct {
		Seq string `json:"seq"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&seqResp); err != nil {
		return "", fmt.Errorf("decode sequence response: %w", err)
	}

	return seqResp.Seq, nil
}
