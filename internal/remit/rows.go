package remit

import (
	"strconv"
	"strings"

	"github.com/wakala/remittance/internal/domain"
)

const fieldSeparator = "~"

// joinRecord joins the fields of one record. The format has no escaping,
// so any value still carrying the separator is rejected rather than
// emitted as a corrupt row.
func joinRecord(fields []string) (string, error) {
	for _, f := range fields {
		if strings.Contains(f, fieldSeparator) {
			return "", &DelimiterError{Value: f}
		}
	}
	return strings.Join(fields, fieldSeparator), nil
}

// docRef renders a pointer to the offending source document for error
// messages.
func docRef(doctype, name string) string {
	return doctype + " " + name
}

// fileName derives the remittance filename: first letter of the bank name,
// last four characters of the company account number, an underscore, the
// MMDD posting date and the sanitized order name with its series prefix
// dropped.
func fileName(order domain.PaymentOrder, acct domain.BankAccount, prefixLen int) (string, error) {
	record := docRef("Bank Account", acct.Name)
	bank, err := requireField(acct.Bank, "Bank", 140, record)
	if err != nil {
		return "", err
	}
	accNo, err := requireField(acct.AccountNumber, "Bank Account No", 30, record)
	if err != nil {
		return "", err
	}

	tail := accNo
	if len(tail) > 4 {
		tail = tail[len(tail)-4:]
	}
	suffix := Sanitize(order.ID, "")
	if prefixLen < len(suffix) {
		suffix = suffix[prefixLen:]
	} else {
		suffix = ""
	}

	return bank[:1] + tail + "_" + filenameDate(order.PostingDate) + suffix + ".txt", nil
}

// headerRow builds the "H" record. The filename doubles as a header field
// and is size-checked like any other.
func headerRow(clientCode, name string) (string, error) {
	client, err := checkFieldSize(clientCode, "Client Code", 20, "")
	if err != nil {
		return "", err
	}
	fname, err := checkFieldSize(name, "File Name", 20, "")
	if err != nil {
		return "", err
	}
	return joinRecord([]string{"H", client, "", "", "", fname})
}

// batchRow builds the "B" record. The order name is truncated, not
// rejected; everything else is validated.
func batchRow(order domain.PaymentOrder, count int, total float64, productCode string) (string, error) {
	records, err := checkFieldSize(strconv.Itoa(count), "No Of Records", 5, "")
	if err != nil {
		return "", err
	}
	amount, err := checkAmount(FormatAmount(total), 17)
	if err != nil {
		return "", err
	}
	product, err := checkFieldSize(productCode, "Product Code", 20, docRef("Bank Account", order.CompanyBankAccount))
	if err != nil {
		return "", err
	}
	return joinRecord([]string{
		"B",
		records,
		amount,
		truncate(Sanitize(order.ID, "_"), 20),
		FormatDate(order.PostingDate),
		product,
	})
}

type detailInput struct {
	ref           domain.PaymentReference
	entry         domain.PaymentEntry
	beneficiary   domain.BankAccount
	address       domain.Address
	companyAcctNo string
	companyEmail  string
	paymentDate   string
}

// detailRow builds the "D" record for one payment reference. Field order
// and widths are fixed by the bank's record grammar.
func detailRow(in detailInput) (string, error) {
	entryRef := docRef("Payment Entry", in.entry.ID)
	acctRef := docRef("Bank Account", in.beneficiary.Name)

	amount, err := checkAmount(FormatAmount(in.ref.Amount), 13)
	if err != nil {
		return "", err
	}
	companyAcctNo, err := checkFieldSize(in.companyAcctNo, "Company Bank Account", 20, docRef("Bank Account", in.entry.BankAccount))
	if err != nil {
		return "", err
	}
	party, err := requireField(in.entry.Party, "Party", 160, entryRef)
	if err != nil {
		return "", err
	}
	branchCode, err := requireField(in.beneficiary.BranchCode, "Branch Code", 11, acctRef)
	if err != nil {
		return "", err
	}
	accNo, err := requireField(in.beneficiary.AccountNumber, "Bank Account No", 20, acctRef)
	if err != nil {
		return "", err
	}
	line1, err := checkFieldSize(Sanitize(in.address.Line1, " "), "Beneficiary Address 1", 50, "")
	if err != nil {
		return "", err
	}
	line2, err := checkFieldSize(Sanitize(in.address.Line2, " "), "Beneficiary Address 2", 50, "")
	if err != nil {
		return "", err
	}
	city, err := checkFieldSize(in.address.City, "Beneficiary City", 20, "")
	if err != nil {
		return "", err
	}
	pincode, err := checkFieldSize(in.address.Pincode, "Pin Code", 6, "")
	if err != nil {
		return "", err
	}
	state, err := checkFieldSize(in.address.State, "Beneficiary State", 20, "")
	if err != nil {
		return "", err
	}
	mobile, err := checkFieldSize(in.address.Phone, "Beneficiary Mobile", 10, "")
	if err != nil {
		return "", err
	}

	email := joinEmails(in.address.Email, in.companyEmail)

	return joinRecord([]string{
		"D",
		Sanitize(in.ref.PaymentEntry, ""),
		truncate(in.entry.ModeOfPayment, 10),
		amount,
		in.paymentDate,
		in.paymentDate, // instrument date mirrors the payment date
		"",             // instrument number
		companyAcctNo,
		"", // dr description
		"", // dr ref no
		"", // cr ref no
		"M",
		"", // beneficiary code
		Sanitize(party, " "),
		"", // beneficiary bank
		branchCode,
		accNo,
		"", // location
		"", // print location
		line1,
		line2,
		"", "", "", // address lines 3-5
		city,
		pincode,
		state,
		truncate(email, 255),
		mobile,
		"", "", "", "", // payment details 1-4
		"", // delivery mode
	})
}

// joinEmails combines the beneficiary and company emails, dropping empty
// entries.
func joinEmails(emails ...string) string {
	var present []string
	for _, e := range emails {
		if e != "" {
			present = append(present, e)
		}
	}
	return strings.Join(present, ",")
}

// adviceRows builds one "E" record per invoice settled by the payment
// entry, in the entry's advice order.
func adviceRows(entry domain.PaymentEntry) ([]string, error) {
	stamp := adviceStamp(entry.PostingDate)
	rows := make([]string, 0, len(entry.Advices))
	for _, adv := range entry.Advices {
		row, err := joinRecord([]string{
			"E",
			entry.ModeOfPayment,
			FormatAmount(adv.TotalAmount),
			"",
			FormatAmount(adv.OutstandingAmount),
			adv.ReferenceName,
			FormatDate(adv.DueDate),
			stamp,
		})
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// trailerRow builds the "T" record from the same aggregates as the batch
// row.
func trailerRow(count int, total float64) (string, error) {
	records, err := checkFieldSize(strconv.Itoa(count), "No Of Records", 5, "")
	if err != nil {
		return "", err
	}
	amount, err := checkAmount(FormatAmount(total), 17)
	if err != nil {
		return "", err
	}
	return joinRecord([]string{"T", records, amount})
}
