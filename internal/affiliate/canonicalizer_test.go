package affiliate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTag Tag = "pariasabet09-20"

func TestCanonicalize(t *testing.T) {
	type args struct {
		raw string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "scheme is added and ref is dropped with asin",
			args: args{
				raw: "amazon.com/dp/B08N5WRWNW?ref=xyz",
			},
			want: "https://amazon.com/dp/B08N5WRWNW?tag=pariasabet09-20",
		},
		{
			name: "product slug and path tail are dropped",
			args: args{
				raw: "https://www.amazon.com/Some-Product/dp/B012345678/ref=sr_1_1",
			},
			want: "https://www.amazon.com/dp/B012345678?tag=pariasabet09-20",
		},
		{
			name: "gp product path",
			args: args{
				raw: "https://www.amazon.de/gp/product/3442267811?pf_rd_p=abc&th=1",
			},
			want: "https://www.amazon.de/dp/3442267811?tag=pariasabet09-20",
		},
		{
			name: "asin match is case insensitive and keeps asin case",
			args: args{
				raw: "https://www.amazon.com/GP/PRODUCT/b012345678",
			},
			want: "https://www.amazon.com/dp/b012345678?tag=pariasabet09-20",
		},
		{
			name: "surrounding whitespace is trimmed",
			args: args{
				raw: "  \thttps://www.amazon.co.uk/dp/B012345678\n",
			},
			want: "https://www.amazon.co.uk/dp/B012345678?tag=pariasabet09-20",
		},
		{
			name: "host is lowercased and port dropped with asin",
			args: args{
				raw: "http://WWW.Amazon.com:8443/dp/B012345678",
			},
			want: "https://www.amazon.com/dp/B012345678?tag=pariasabet09-20",
		},
		{
			name: "uppercase scheme is not prefixed twice",
			args: args{
				raw: "HTTPS://www.amazon.com/dp/B012345678",
			},
			want: "https://www.amazon.com/dp/B012345678?tag=pariasabet09-20",
		},
		{
			name: "tag is appended without asin",
			args: args{
				raw: "https://www.amazon.com/s?k=shoes&i=fashion",
			},
			want: "https://www.amazon.com/s?k=shoes&i=fashion&tag=pariasabet09-20",
		},
		{
			name: "tag is overwritten in place and tracking params dropped",
			args: args{
				raw: "https://www.amazon.com/s?tag=other-21&k=shoes&ref=nb_sb_noss&ref_=abc",
			},
			want: "https://www.amazon.com/s?tag=pariasabet09-20&k=shoes",
		},
		{
			name: "duplicate tags collapse to one",
			args: args{
				raw: "https://www.amazon.com/s?k=a&tag=one&tag=two",
			},
			want: "https://www.amazon.com/s?k=a&tag=pariasabet09-20",
		},
		{
			name: "encoded tracking key is dropped",
			args: args{
				raw: "https://www.amazon.com/s?re%66=1&k=a%20b",
			},
			want: "https://www.amazon.com/s?k=a%20b&tag=pariasabet09-20",
		},
		{
			name: "fragment is kept",
			args: args{
				raw: "https://www.amazon.com/s?k=a#reviews",
			},
			want: "https://www.amazon.com/s?k=a&tag=pariasabet09-20#reviews",
		},
		{
			name: "http scheme is kept without asin",
			args: args{
				raw: "http://smile.amazon.com/b?node=123",
			},
			want: "http://smile.amazon.com/b?node=123&tag=pariasabet09-20",
		},
		{
			name: "eleven character token is not an asin",
			args: args{
				raw: "https://www.amazon.com/dp/B0123456789",
			},
			want: "https://www.amazon.com/dp/B0123456789?tag=pariasabet09-20",
		},
		{
			name: "illegal query characters are percent encoded",
			args: args{
				raw: "https://www.amazon.com/s?k=a b&ref=x",
			},
			want: "https://www.amazon.com/s?k=a%20b&tag=pariasabet09-20",
		},
		{
			name: "markup and non ascii in query are percent encoded",
			args: args{
				raw: "https://www.amazon.com/s?k=<script>&q=\"café\"",
			},
			want: "https://www.amazon.com/s?k=%3Cscript%3E&q=%22caf%C3%A9%22&tag=pariasabet09-20",
		},
		{
			name: "existing escapes are kept",
			args: args{
				raw: "https://www.amazon.com/s?k=a%2Bb%20c",
			},
			want: "https://www.amazon.com/s?k=a%2Bb%20c&tag=pariasabet09-20",
		},
		{
			name: "host only gets root path",
			args: args{
				raw: "amazon.com",
			},
			want: "https://amazon.com/?tag=pariasabet09-20",
		},
		{
			name: "short alias domain",
			args: args{
				raw: "amzn.to/3xYzAbC",
			},
			want: "https://amzn.to/3xYzAbC?tag=pariasabet09-20",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.args.raw, testTag)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCanonicalizeErrors(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{
			name:    "empty input",
			raw:     "",
			wantErr: ErrEmptyInput,
		},
		{
			name:    "whitespace only",
			raw:     " \t\n ",
			wantErr: ErrEmptyInput,
		},
		{
			name:    "not a url",
			raw:     "not a url",
			wantErr: ErrMalformedURL,
		},
		{
			name:    "scheme without host",
			raw:     "https://",
			wantErr: ErrMalformedURL,
		},
		{
			name:    "invalid host characters",
			raw:     "https://amazon.com%zz/dp/B012345678",
			wantErr: ErrMalformedURL,
		},
		{
			name:    "other retailer",
			raw:     "https://google.com",
			wantErr: ErrUnsupportedDomain,
		},
		{
			name:    "amazon only in path",
			raw:     "https://example.com/amazon/dp/B012345678",
			wantErr: ErrUnsupportedDomain,
		},
		{
			name:    "lookalike short domain",
			raw:     "https://amzn.top/abc",
			wantErr: ErrUnsupportedDomain,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Canonicalize(tt.raw, testTag)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got)
		})
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"amazon.com/dp/B08N5WRWNW?ref=xyz",
		"https://www.amazon.com/s?k=shoes&ref=nb&tag=other",
		"https://amzn.to/3xYzAbC",
		"https://www.amazon.com/s?k=a b&q=<é>",
		"amazon.com",
	}
	sut := New(testTag)

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			once, err := sut.Canonicalize(input)
			require.NoError(t, err)

			twice, err := sut.Canonicalize(once)
			require.NoError(t, err)

			assert.Equal(t, once, twice)
		})
	}
}

func TestCanonicalizerWithStrictPolicy(t *testing.T) {
	sut := New(testTag, WithPolicy(StrictPolicy{}))

	t.Run("accepts regional store", func(t *testing.T) {
		got, err := sut.Canonicalize("www.amazon.co.jp/dp/B012345678")

		require.NoError(t, err)
		assert.Equal(t, "https://www.amazon.co.jp/dp/B012345678?tag=pariasabet09-20", got)
	})

	t.Run("rejects marker in foreign domain", func(t *testing.T) {
		_, err := sut.Canonicalize("https://amazon.evil.com/dp/B012345678")

		assert.ErrorIs(t, err, ErrUnsupportedDomain)
	})

	t.Run("lenient policy accepts the same host", func(t *testing.T) {
		_, err := New(testTag).Canonicalize("https://amazon.evil.com/dp/B012345678")

		assert.NoError(t, err)
	})
}

func TestCanonicalizeEscapesTag(t *testing.T) {
	got, err := Canonicalize("https://www.amazon.com/s?k=a", Tag("a&b c"))

	require.NoError(t, err)
	assert.Equal(t, "https://www.amazon.com/s?k=a&tag=a%26b+c", got)
}
