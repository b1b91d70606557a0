package main

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedLanguages = []language.Tag{language.AmericanEnglish, language.German}

var languageMatcher = language.NewMatcher(supportedLanguages)

func init() {
	message.SetString(language.AmericanEnglish, "msg.generated", "Serialized %d frames into %d bits (%s, %d ns per bit)")
	message.SetString(language.AmericanEnglish, "msg.skipped", "No data to serialize; nothing written")
	message.SetString(language.AmericanEnglish, "msg.wrote", "Wrote %s")
	message.SetString(language.AmericanEnglish, "msg.rule", "rule 0x%02X: %d data bits, parity %s, %d stop bits, %s first")
	message.SetString(language.AmericanEnglish, "msg.timing", "%d baud: %d ns per bit, %d ns half period")
	message.SetString(language.AmericanEnglish, "msg.config_written", "Wrote job config template to %s")
	message.SetString(language.AmericanEnglish, "msg.config_valid", "Validated job config at %s (%s %s, %s data)")

	message.SetString(language.German, "msg.generated", "%d Rahmen in %d Bits serialisiert (%s, %d ns pro Bit)")
	message.SetString(language.German, "msg.skipped", "Keine Daten zum Serialisieren; nichts geschrieben")
	message.SetString(language.German, "msg.wrote", "%s geschrieben")
	message.SetString(language.German, "msg.rule", "Regel 0x%02X: %d Datenbits, Parität %s, %d Stoppbits, %s zuerst")
	message.SetString(language.German, "msg.timing", "%d Baud: %d ns pro Bit, %d ns halbe Periode")
	message.SetString(language.German, "msg.config_written", "Job-Konfigurationsvorlage nach %s geschrieben")
	message.SetString(language.German, "msg.config_valid", "Job-Konfiguration %s geprüft (%s %s, Daten: %s)")
}

func newPrinter(tag language.Tag) *message.Printer {
	_, idx, _ := languageMatcher.Match(tag)
	return message.NewPrinter(supportedLanguages[idx])
}

func errUnknownLogLevel(raw string) error {
	return fmt.Errorf("unknown log level %q", raw)
}
