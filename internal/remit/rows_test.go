package remit

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wakala/remittance/internal/domain"
)

func testOrder() domain.PaymentOrder {
	return domain.PaymentOrder{
		ID:                 "PMO-00001",
		Company:            "Acme Industries",
		CompanyBankAccount: "Acme Industries - HDFC",
		PostingDate:        time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC),
		References: []domain.PaymentReference{
			{PaymentEntry: "PE-000101", Supplier: "ABC Traders", BankAccount: "ABC Traders - SBI", Amount: 1500},
		},
	}
}

func testCompanyAccount() domain.BankAccount {
	return domain.BankAccount{
		Name:          "Acme Industries - HDFC",
		Bank:          "HDFC Bank",
		AccountNumber: "1234567890",
		ClientCode:    "CL001",
		ProductCode:   "PROD1",
	}
}

func TestFileName(t *testing.T) {
	name, err := fileName(testOrder(), testCompanyAccount(), 4)
	require.NoError(t, err)
	require.Equal(t, "H7890_03070001.txt", name)
}

func TestFileNamePrefixWidth(t *testing.T) {
	name, err := fileName(testOrder(), testCompanyAccount(), 3)
	require.NoError(t, err)
	require.Equal(t, "H7890_030700001.txt", name)

	// A prefix wider than the sanitized name leaves no suffix.
	name, err = fileName(testOrder(), testCompanyAccount(), 40)
	require.NoError(t, err)
	require.Equal(t, "H7890_0307.txt", name)
}

func TestFileNameRequiresBankDetails(t *testing.T) {
	acct := testCompanyAccount()
	acct.Bank = ""
	_, err := fileName(testOrder(), acct, 4)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "Bank", missing.Field)
}

func TestHeaderRow(t *testing.T) {
	row, err := headerRow("CL001", "H7890_03070001.txt")
	require.NoError(t, err)
	require.Equal(t, "H~CL001~~~~H7890_03070001.txt", row)
}

func TestHeaderRowRejectsLongFileName(t *testing.T) {
	_, err := headerRow("CL001", strings.Repeat("f", 21))
	var tooLong *FieldTooLongError
	require.ErrorAs(t, err, &tooLong)
	require.Equal(t, "File Name", tooLong.Label)
}

func TestBatchRow(t *testing.T) {
	row, err := batchRow(testOrder(), 1, 1500, "PROD1")
	require.NoError(t, err)
	require.Equal(t, "B~1~1500.00~PMO_00001~07/03/2024~PROD1", row)
}

// The batch order name is a truncating column, not a rejecting one.
func TestBatchRowTruncatesOrderName(t *testing.T) {
	order := testOrder()
	order.ID = "PMO-SUPPLEMENTARY-RUN-2024-00001"
	row, err := batchRow(order, 1, 1500, "PROD1")
	require.NoError(t, err)
	fields := strings.Split(row, "~")
	require.Len(t, fields[3], 20)
	require.Equal(t, "PMO_SUPPLEMENTARY_RU", fields[3])
}

func TestTrailerRow(t *testing.T) {
	row, err := trailerRow(1, 1500)
	require.NoError(t, err)
	require.Equal(t, "T~1~1500.00", row)
}

func TestDetailRowFields(t *testing.T) {
	order := testOrder()
	row, err := detailRow(detailInput{
		ref: order.References[0],
		entry: domain.PaymentEntry{
			ID:            "PE-000101",
			ModeOfPayment: "NEFT",
			Party:         "ABC Traders",
			BankAccount:   "Acme Industries - HDFC",
			PostingDate:   time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		},
		beneficiary: domain.BankAccount{
			Name:          "ABC Traders - SBI",
			Bank:          "State Bank of India",
			AccountNumber: "ACC123456",
			BranchCode:    "BR01",
		},
		address: domain.Address{
			Supplier: "ABC Traders",
			Type:     domain.AddressBilling,
			Line1:    "12, M.G. Road",
			Line2:    "Sector 5",
			City:     "Bengaluru",
			Pincode:  "560001",
			State:    "Karnataka",
			Phone:    "9800012345",
			Email:    "ops@abctraders.example",
		},
		companyAcctNo: "1234567890",
		companyEmail:  "finance@acme.example",
		paymentDate:   "07/03/2024",
	})
	require.NoError(t, err)

	fields := strings.Split(row, "~")
	require.Len(t, fields, 34)
	require.Equal(t, "D", fields[0])
	require.Equal(t, "PE000101", fields[1])
	require.Equal(t, "NEFT", fields[2])
	require.Equal(t, "1500.00", fields[3])
	require.Equal(t, "07/03/2024", fields[4])
	require.Equal(t, fields[4], fields[5])
	require.Equal(t, "", fields[6])
	require.Equal(t, "1234567890", fields[7])
	require.Equal(t, "M", fields[11])
	require.Equal(t, "ABC Traders", fields[13])
	require.Equal(t, "BR01", fields[15])
	require.Equal(t, "ACC123456", fields[16])
	require.Equal(t, "12  M G  Road", fields[19])
	require.Equal(t, "Sector 5", fields[20])
	require.Equal(t, "Bengaluru", fields[24])
	require.Equal(t, "560001", fields[25])
	require.Equal(t, "Karnataka", fields[26])
	require.Equal(t, "ops@abctraders.example,finance@acme.example", fields[27])
	require.Equal(t, "9800012345", fields[28])
	require.Equal(t, "", fields[33])
}

func TestDetailRowMissingRequired(t *testing.T) {
	in := detailInput{
		ref:           testOrder().References[0],
		entry:         domain.PaymentEntry{ID: "PE-000101", Party: "ABC Traders"},
		beneficiary:   domain.BankAccount{Name: "ABC Traders - SBI", AccountNumber: "ACC123456"},
		companyAcctNo: "1234567890",
		paymentDate:   "07/03/2024",
	}
	_, err := detailRow(in)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "Branch Code", missing.Field)
	require.Contains(t, err.Error(), "ABC Traders - SBI")
}

func TestAdviceRows(t *testing.T) {
	entry := domain.PaymentEntry{
		ID:            "PE-000101",
		ModeOfPayment: "NEFT",
		PostingDate:   time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC),
		Advices: []domain.AdvicePayment{
			{TotalAmount: 125000, OutstandingAmount: 0, ReferenceName: "PINV-2024-0041", DueDate: time.Date(2024, time.March, 20, 0, 0, 0, 0, time.UTC)},
			{TotalAmount: 48000.50, OutstandingAmount: 8000.50, ReferenceName: "PINV-2024-0057"},
		},
	}

	rows, err := adviceRows(entry)
	require.NoError(t, err)
	require.Equal(t, []string{
		"E~NEFT~125000.00~~0.00~PINV-2024-0041~20/03/2024~MAR2405",
		"E~NEFT~48000.50~~8000.50~PINV-2024-0057~~MAR2405",
	}, rows)
}

func TestJoinRecordRejectsDelimiter(t *testing.T) {
	_, err := joinRecord([]string{"D", "ops~abctraders.example"})
	var delim *DelimiterError
	require.ErrorAs(t, err, &delim)
}
