package services

import "testing"

func TestPublicURLDerivation(t *testing.T) {
	cases := []struct {
		name string
		svc  *bucketService
		key  string
		want string
	}{
		{
			name: "configured_base_url",
			svc:  &bucketService{bucketName: "hr-articles", publicBaseURL: "https://cdn.example.com"},
			key:  "html/vacancy/abc.html",
			want: "https://cdn.example.com/html/vacancy/abc.html",
		},
		{
			name: "emulator_endpoint_fallback",
			svc:  &bucketService{bucketName: "hr-articles", emulatorHost: "http://localhost:4443"},
			key:  "html/email/abc.html",
			want: "http://localhost:4443/hr-articles/html/email/abc.html",
		},
		{
			name: "default_storage_host",
			svc:  &bucketService{bucketName: "hr-articles"},
			key:  "html/custom/abc.html",
			want: "https://storage.googleapis.com/hr-articles/html/custom/abc.html",
		},
		{
			name: "base_url_wins_over_emulator",
			svc: &bucketService{
				bucketName:    "hr-articles",
				publicBaseURL: "https://cdn.example.com",
				emulatorHost:  "http://localhost:4443",
			},
			key:  "html/vacancy/abc.html",
			want: "https://cdn.example.com/html/vacancy/abc.html",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.svc.PublicURL(tc.key)
			if got != tc.want {
				t.Fatalf("PublicURL(%q): want=%q got=%q", tc.key, tc.want, got)
			}
		})
	}
}

func TestNewBucketServiceRequiresBucketName(t *testing.T) {
	_, err := NewBucketService(BucketConfig{}, testLogger(t))
	if err == nil {
		t.Fatalf("NewBucketService: expected error for empty bucket name, got nil")
	}
}
