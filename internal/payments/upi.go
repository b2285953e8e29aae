package payments

import (
	"fmt"
	"net/url"
)

// gpayPackage pins the intent link to the Google Pay app, matching the
// payment instructions shown to visitors.
const gpayPackage = "com.google.android.apps.nbu.paisa.user"

// UPIIntent carries everything the front end needs to initiate a UPI
// payment. No callback ever reaches this service; the only way back in
// is the visitor submitting a transaction id.
type UPIIntent struct {
	UPIID      string `json:"upi_id"`
	PayeeName  string `json:"payee_name"`
	Amount     string `json:"amount"`
	UPILink    string `json:"upi_link"`
	IntentLink string `json:"intent_link"`
}

// BuildUPIIntent assembles the generic upi:// link and the Android
// intent deep link for a fixed payee and amount.
func BuildUPIIntent(upiID, payeeName, amount string) UPIIntent {
	params := fmt.Sprintf("pa=%s&pn=%s&mc=0000&mode=02&purpose=00&am=%s",
		url.QueryEscape(upiID), url.QueryEscape(payeeName), url.QueryEscape(amount))

	return UPIIntent{
		UPIID:      upiID,
		PayeeName:  payeeName,
		Amount:     amount,
		UPILink:    "upi://pay?" + params,
		IntentLink: fmt.Sprintf("intent://pay?%s#Intent;scheme=upi;package=%s;end;", params, gpayPackage),
	}
}
