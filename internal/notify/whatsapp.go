package notify

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
)

// WhatsApp通知通过Twilio的REST接口发送。
// 凭证从环境变量读取：TWILIO_ACCOUNT_SID / TWILIO_AUTH_TOKEN / TWILIO_WHATSAPP_FROM。
// 消息量很小，直接调用其REST消息API，不引入SDK。

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// sendWhatsApp 同步发送一条WhatsApp消息。
func sendWhatsApp(to, message string) error {
	sid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_WHATSAPP_FROM")
	if sid == "" || authToken == "" {
		fmt.Printf("[WhatsApp未发送] to=%s\n", to)
		return nil
	}
	if from == "" {
		from = "+14155238886" // Twilio sandbox号码
	}

	form := url.Values{}
	form.Set("From", "whatsapp:"+from)
	form.Set("To", "whatsapp:"+to)
	form.Set("Body", message)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioAPIBase, sid)
	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(sid, authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("WhatsApp请求失败: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("WhatsApp网关返回状态 %d", resp.StatusCode)
	}
	return nil
}

// SendOrderStatusWhatsAppAsync 发送订单状态变更的WhatsApp通知。
func SendOrderStatusWhatsAppAsync(phone, orderID, status string) {
	if phone == "" {
		return
	}
	message := fmt.Sprintf("Quick Eats: your order %s is now %q.", orderID, status)
	go func() {
		if err := sendWhatsApp(phone, message); err != nil {
			fmt.Printf("发送WhatsApp通知失败 (to=%s): %v\n", phone, err)
		}
	}()
}
