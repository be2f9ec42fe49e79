// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// text_cmd.go - The text command: encode a string as bytes.
package cli

import (
	"github.com/jeranaias/hexlens/internal/convert"
)

// HandleText encodes a string one byte per character and prints every
// reading of the resulting bytes. Characters outside Latin-1 become '?'.
func HandleText(args Args) error {
	if args.Query == "" {
		return HandleError(NewValidationErrorWithExample("text", "",
			"a string is required", `hexlens text "Hello"`), args.JSON)
	}

	s, err := resolveSettings(args)
	if err != nil {
		return HandleError(err, args.JSON)
	}

	b := convert.EncodeText(args.Query)

	if args.JSON {
		return NewJSONResponse("text", conversionData(args.Query, "text", b, s)).Print()
	}

	printConversion(b, s, args.Quiet)
	return nil
}
