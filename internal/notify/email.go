package notify

import (
	"fmt"

	"github.com/Shinkhal/QuickEats/internal/platform/config"
	"github.com/resendlabs/resend-go"
)

// client 是进程级的邮件客户端。为nil时邮件发送被禁用，只打印日志。
var client *resend.Client

var fromName = "Quick Eats"
var fromEmail = "noreply@quickeats.com"

// Configure 根据配置初始化邮件客户端。
// 未配置API key时邮件功能整体降级为日志输出，便于本地开发。
func Configure(cfg config.EmailConfig) {
	if cfg.FromName != "" {
		fromName = cfg.FromName
	}
	if cfg.FromEmail != "" {
		fromEmail = cfg.FromEmail
	}
	if cfg.APIKey == "" {
		fmt.Println("未配置邮件API key，外发邮件已禁用。")
		return
	}
	client = resend.NewClient(cfg.APIKey)
	fmt.Println("邮件客户端初始化成功。")
}

// sendEmail 同步发送一封纯文本邮件。
func sendEmail(to, subject, text string) error {
	if client == nil {
		fmt.Printf("[邮件未发送] to=%s subject=%q\n", to, subject)
		return nil
	}

	request := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", fromName, fromEmail),
		To:      []string{to},
		Subject: subject,
		Text:    text,
	}
	if _, err := client.Emails.Send(request); err != nil {
		return fmt.Errorf("邮件发送失败: %w", err)
	}
	return nil
}

// sendAsync 在新的Goroutine中发送通知。
// 所有通知都是fire-and-forget的：失败只记录日志，绝不影响请求结果。
func sendAsync(kind, to, subject, text string) {
	go func() {
		if err := sendEmail(to, subject, text); err != nil {
			fmt.Printf("发送%s失败 (to=%s): %v\n", kind, to, err)
		}
	}()
}

// SendWelcomeEmailAsync 发送注册欢迎邮件。
func SendWelcomeEmailAsync(name, email string) {
	subject := "Welcome to Quick Eats!"
	text := fmt.Sprintf(`Dear %s,

Welcome to Quick Eats!

We are thrilled to have you join our community of food lovers. Explore our menu and enjoy the convenience of ordering your favorite meals with just a few clicks.

Best regards,
The Quick Eats Team`, name)
	sendAsync("欢迎邮件", email, subject, text)
}

// SendOrderConfirmationAsync 发送下单确认邮件。
func SendOrderConfirmationAsync(name, email, orderID string, amount float64) {
	subject := "Order Confirmation - Your Order Has Been Placed!"
	text := fmt.Sprintf(`Dear %s,

Thank you for your order! Your order of Rs.%.2f has been successfully placed.

Order Details:
- Order ID: %s
- Total Amount: Rs.%.2f

We will notify you as soon as your order is out for delivery.

Best regards,
The Quick Eats Team`, name, amount, orderID, amount)
	sendAsync("下单确认邮件", email, subject, text)
}
