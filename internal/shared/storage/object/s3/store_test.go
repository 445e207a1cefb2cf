package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "generated/doc.docx", want: "generated/doc.docx"},
		{name: "simple prefix", prefix: "root", key: "generated/doc.docx", want: "root/generated/doc.docx"},
		{name: "prefix trailing slash", prefix: "root/", key: "generated/doc.docx", want: "root/generated/doc.docx"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/generated/doc.docx", want: "root/generated/doc.docx"},
		{name: "nested prefix", prefix: "root/sub", key: "generated/doc.docx", want: "root/sub/generated/doc.docx"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
