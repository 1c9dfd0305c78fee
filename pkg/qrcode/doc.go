// Package qrcode renders strings as scannable QR code images.
//
// Its primary consumer is the two-factor enrollment flow, which displays the
// otpauth:// provisioning URI as a QR code for authenticator apps to scan.
// The package stays generic: it accepts any content string and knows nothing
// about the URI format.
//
// # Usage
//
//	png, err := qrcode.GeneratePNG(uri, 256)
//	if err != nil {
//	    // handle error
//	}
//
// Or, for embedding directly in HTML:
//
//	dataURI, err := qrcode.GenerateDataURI(uri, 0) // 0 falls back to DefaultSize
//	// <img src="{{.DataURI}}">
package qrcode
