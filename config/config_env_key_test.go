package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backend": map[string]any{
			"baseUrl": "http://localhost:4943",
		},
		"paymentQr": map[string]any{
			"payeeId": "",
			"errorCorrectionLevel": "M",
		},
		"catalog": map[string]any{
			"maxImageBytes": 0,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "PAYMENTQR_PAYEEID", want: "paymentQr.payeeId"},
		{envKey: "PAYMENTQR_ERRORCORRECTIONLEVEL", want: "paymentQr.errorCorrectionLevel"},
		{envKey: "CATALOG_MAXIMAGEBYTES", want: "catalog.maxImageBytes"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}
