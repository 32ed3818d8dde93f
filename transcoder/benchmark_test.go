package transcoder

import (
	"testing"
)

func BenchmarkEncode(b *testing.B) {
	c := mustCodec(b, personLayout())
	v := personValue()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Encode(v); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode(b *testing.B) {
	c := mustCodec(b, personLayout())
	data, err := c.Encode(personValue())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSerialize(b *testing.B) {
	c := mustCodec(b, personLayout())
	data, err := c.Encode(personValue())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Serialize(data); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeserialize(b *testing.B) {
	c := mustCodec(b, personLayout())
	data, err := c.Encode(personValue())
	if err != nil {
		b.Fatal(err)
	}
	text, err := c.Serialize(data)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Deserialize(text); err != nil {
			b.Fatal(err)
		}
	}
}
