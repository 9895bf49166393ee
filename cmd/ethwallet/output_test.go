package main

import (
	"bytes"
	"testing"

	"github.com/complex-gh/ethwallet"
	"github.com/matryer/is"
)

// TestPrintWallet_JSON verifies snake_case keys and omitted empty fields
func TestPrintWallet_JSON(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	err := printWallet(&buf, &ethwallet.Wallet{
		Path:       "m/44'/60'/0'/0",
		PrivateKey: "aa",
		Address:    "0xcc",
	}, true)
	is.NoErr(err)

	want := "{\n" +
		"  \"path\": \"m/44'/60'/0'/0\",\n" +
		"  \"private_key\": \"aa\",\n" +
		"  \"address\": \"0xcc\"\n" +
		"}\n\n"
	is.Equal(buf.String(), want)
}

// TestPrintWallet_Text verifies the text block is followed by a blank line
func TestPrintWallet_Text(t *testing.T) {
	is := is.New(t)

	var buf bytes.Buffer
	err := printWallet(&buf, &ethwallet.Wallet{Address: "0xcc"}, false)
	is.NoErr(err)
	is.Equal(buf.String(), "\n      Address              0xcc\n\n")
}

// TestLanguageFlag verifies names, tags and the english fallback
func TestLanguageFlag(t *testing.T) {
	is := is.New(t)

	is.Equal(languageFlag(""), ethwallet.English)
	is.Equal(languageFlag("japanese"), ethwallet.Japanese)
	is.Equal(languageFlag("zh-Hant"), ethwallet.ChineseTraditional)
	is.Equal(languageFlag("klingon"), ethwallet.English)
}

// TestPasswordFlag verifies the flag value is used when not prompting
func TestPasswordFlag(t *testing.T) {
	is := is.New(t)

	pass, err := passwordFlag("hunter2", false)
	is.NoErr(err)
	is.Equal(pass, "hunter2")
}
