package wire

import (
	"fmt"
	"math"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
)

func benchmarkMessage() []byte {
	var buf []byte
	for i := 0; i < 64; i++ {
		buf = protowire.AppendTag(buf, 1, protowire.VarintType)
		buf = protowire.AppendVarint(buf, uint64(i)*1_000_003)
		buf = protowire.AppendTag(buf, 2, protowire.BytesType)
		buf = protowire.AppendString(buf, "benchmark payload")
		buf = protowire.AppendTag(buf, 3, protowire.Fixed64Type)
		buf = protowire.AppendFixed64(buf, math.Float64bits(float64(i)/3))
		buf = protowire.AppendTag(buf, 4, protowire.VarintType)
		buf = protowire.AppendVarint(buf, protowire.EncodeZigZag(-int64(i)))
	}
	return buf
}

func BenchmarkCursor_Walk(b *testing.B) {
	data := benchmarkMessage()
	c := NewCursor(data)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		c.Reset(data)
		for !c.Done() {
			tag, err := c.Tag()
			if err != nil {
				b.Fatal(err)
			}
			switch tag.Number {
			case 1:
				_, err = c.Uint64()
			case 2:
				_, err = c.Bytes()
			case 3:
				_, err = c.Float64()
			case 4:
				_, err = c.Sint64()
			}
			if err != nil {
				b.Fatal(err)
			}
		}
	}
}

func BenchmarkProtowire_Walk(b *testing.B) {
	data := benchmarkMessage()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		buf := data
		for len(buf) > 0 {
			_, typ, n := protowire.ConsumeTag(buf)
			if n < 0 {
				b.Fatal(protowire.ParseError(n))
			}
			buf = buf[n:]
			n = protowire.ConsumeFieldValue(0, typ, buf)
			if n < 0 {
				b.Fatal(protowire.ParseError(n))
			}
			buf = buf[n:]
		}
	}
}

func BenchmarkReadVarint(b *testing.B) {
	for _, v := range []uint64{1, 1 << 20, math.MaxUint64} {
		data := protowire.AppendVarint(nil, v)
		b.Run(fmt.Sprintf("%dbytes", len(data)), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, _, err := ReadVarint(data, 0); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
