package service

import (
	"fmt"
	"log"

	"github.com/yudhapane/kacapos/internal/config"
	"github.com/yudhapane/kacapos/internal/domain/entity"
	"github.com/yudhapane/kacapos/pkg/printer"
)

// PrinterService renders transactions and daily summaries for the shop's
// narrow thermal paper and sends them to the configured printer.
type PrinterService struct {
	printer     printer.Printer
	shop        *config.ShopConfig
	printerType string
	charWidth   int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(p printer.Printer, shop *config.ShopConfig, printerCfg *config.PrinterConfig) *PrinterService {
	return &PrinterService{
		printer:     p,
		shop:        shop,
		printerType: printerCfg.Type,
		charWidth:   printerCfg.CharWidth,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// BuildReceipt composes the printable receipt model for a transaction.
func (s *PrinterService) BuildReceipt(txn *entity.Transaction, reprint bool) *entity.Receipt {
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			ShopName: s.shop.Name,
			Address:  s.shop.Address,
			Phone:    s.shop.Phone,
		},
		ReceiptCode:   txn.ReceiptCode,
		Date:          txn.Timestamp.Format("2006-01-02 15:04"),
		PaymentMethod: txn.PaymentMethod.String(),
		TotalQty:      txn.TotalQty,
		Total:         txn.Total,
		Reprint:       reprint,
	}

	for _, item := range txn.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.ProductName,
			WidthCM:   item.WidthCM,
			HeightCM:  item.HeightCM,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal,
		})
	}
	return receipt
}

// PrintTransaction renders and prints a customer receipt. The receipt model
// is returned even when printing fails so the handler can still show it.
func (s *PrinterService) PrintTransaction(txn *entity.Transaction, reprint bool) (*entity.Receipt, error) {
	receipt := s.BuildReceipt(txn, reprint)

	data := s.FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (receipt %s): %v", txn.ReceiptCode, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}
	return receipt, nil
}

// PrintSummary renders and prints the end-of-day closing summary.
func (s *PrinterService) PrintSummary(summary *entity.DailySummary) error {
	data := s.FormatSummary(summary)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (summary %s): %v", summary.DateKey, err)
		return fmt.Errorf("failed to print summary: %w", err)
	}
	return nil
}

// FormatReceipt converts a Receipt into ESC/POS bytes for the configured
// paper width.
func (s *PrinterService) FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.charWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.ShopName).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Reprint {
		doc.Text("*** REPRINT ***")
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("No:", r.ReceiptCode).
		KeyValue("Date:", r.Date).
		KeyValue("Payment:", r.PaymentMethod)

	doc.Separator('-')

	for _, item := range r.Items {
		doc.CutLine(item.Name, item.WidthCM, item.HeightCM, item.Quantity, printer.FormatRupiah(item.Subtotal))
		if item.Quantity > 1 {
			doc.TextF("    @ %s", printer.FormatRupiah(item.UnitPrice))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Items:", fmt.Sprintf("%d", r.TotalQty))
	doc.SetBold(true).
		KeyValue("TOTAL:", printer.FormatRupiah(r.Total)).
		SetBold(false)

	doc.Separator('-')

	doc.SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Terima kasih!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// FormatSummary converts a DailySummary into ESC/POS bytes: one block per
// payment method with its transactions, then the day totals.
func (s *PrinterService) FormatSummary(sum *entity.DailySummary) []byte {
	doc := printer.NewDocument(s.charWidth)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		Text(s.shop.Name).
		SetBold(false).
		Text("DAILY SUMMARY").
		Text(sum.DateKey).
		SetAlign(printer.AlignLeft).
		Separator('=')

	for _, group := range sum.Groups {
		if len(group.Transactions) == 0 {
			continue
		}
		doc.SetBold(true).
			Text(group.Method).
			SetBold(false)
		for _, txn := range group.Transactions {
			doc.KeyValue("  "+txn.ReceiptCode, printer.FormatRupiah(txn.Total))
		}
		doc.KeyValue("  Subtotal:", printer.FormatRupiah(group.Total)).
			Separator('-')
	}

	doc.KeyValue("Transactions:", fmt.Sprintf("%d", sum.TransactionCount)).
		KeyValue("Items:", fmt.Sprintf("%d", sum.TotalQty)).
		SetBold(true).
		KeyValue("TOTAL:", printer.FormatRupiah(sum.Total)).
		SetBold(false)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}
