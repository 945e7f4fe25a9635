package main

import (
	"testing"

	"github.com/frankban/quicktest"
)

func TestParseKeyAcceptsHexAndDecimal(t *testing.T) {
	c := quicktest.New(t)

	got, err := parseKey("0xABCDEF1234567890")
	c.Assert(err, quicktest.IsNil)
	c.Assert(got, quicktest.Equals, uint64(0xABCDEF1234567890))

	got, err = parseKey("42")
	c.Assert(err, quicktest.IsNil)
	c.Assert(got, quicktest.Equals, uint64(42))
}

func TestParseKeyRejectsGarbage(t *testing.T) {
	c := quicktest.New(t)
	_, err := parseKey("not-a-key")
	c.Assert(err, quicktest.IsNotNil)
}
