package lyssa

import (
	"github.com/yutian0/lyssa/crypto/tskey"
	"github.com/yutian0/lyssa/license"
	"github.com/yutian0/lyssa/pid"
)

// Request describes one end-to-end key operation.
type Request struct {
	// PID is the Product ID the keys are issued for. Required.
	PID string

	// SPK is an optional pre-existing Service Provider Key. When set it
	// is verified against PID and reused instead of generating a new one.
	SPK string

	// Count is the number of licenses in the key pack, in [1, 9999].
	// Must be set together with License.
	Count int

	// License is the license triple in CHID_MAJOR_MINOR form.
	// Must be set together with Count.
	License string
}

// Result carries the keys produced by Process.
type Result struct {
	// SPK is the Service Provider Key: verified if supplied, freshly
	// generated otherwise.
	SPK string

	// LKP is the License Key Pack, empty when none was requested.
	LKP string
}

// Process drives one generate-and-verify flow: it resolves the Service
// Provider Key (verifying a supplied one or generating a new one) and,
// when a count and license triple are present, generates a License Key
// Pack. The key pack signature does not consume the SPK; the two keys
// are independent.
func Process(req Request) (*Result, error) {
	p, err := pid.Parse(req.PID)
	if err != nil {
		return nil, err
	}

	wantLKP := req.Count != 0 || req.License != ""
	var triple license.Triple
	if wantLKP {
		if req.Count == 0 || req.License == "" {
			return nil, ErrLicensePairing
		}
		if err = license.ValidateCount(req.Count); err != nil {
			return nil, err
		}
		if triple, err = license.ParseTriple(req.License); err != nil {
			return nil, err
		}
	}

	res := &Result{}
	if req.SPK != "" {
		if !tskey.Validate(p, tskey.SPK, req.SPK) {
			return nil, ErrSPKMismatch
		}
		res.SPK = req.SPK
	} else {
		payload, err := tskey.SPKPayload(p.SPKID())
		if err != nil {
			return nil, err
		}
		if res.SPK, err = tskey.Generate(p, tskey.SPK, payload); err != nil {
			return nil, err
		}
	}

	if wantLKP {
		payload, err := tskey.LKPPayload(triple.ChannelID, req.Count, triple.VersionCode())
		if err != nil {
			return nil, err
		}
		if res.LKP, err = tskey.Generate(p, tskey.LKP, payload); err != nil {
			return nil, err
		}
	}
	return res, nil
}
