package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

func main() {
	// 1. 定义命令行参数
	server := flag.String("server", "http://localhost:5000", "风险评分服务地址")
	mode := flag.String("mode", "risk", "请求类型: risk | portfolio | token")
	address := flag.String("address", "", "代币合约地址 (risk/token)")
	addresses := flag.String("addresses", "", "逗号分隔的地址列表 (portfolio)")
	flag.Parse()

	base := strings.TrimRight(*server, "/")

	// 2. 根据模式构造请求
	var (
		method  = http.MethodPost
		url     string
		payload any
	)
	switch *mode {
	case "risk":
		url = base + "/api/analyze-risk"
		payload = map[string]any{"address": *address}
	case "portfolio":
		url = base + "/api/analyze-portfolio"
		payload = map[string]any{"addresses": splitAddresses(*addresses)}
	case "token":
		method = http.MethodGet
		url = base + "/api/token/" + *address
	default:
		log.Fatalf("错误: 未知的模式 %q", *mode)
	}

	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			log.Fatalf("错误: 无法打包 JSON 数据: %v", err)
		}
		fmt.Printf("请求体: %s\n", string(jsonData))
		body = bytes.NewReader(jsonData)
	}

	// 3. 创建并发送 HTTP 请求
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		log.Fatalf("错误: 无法创建请求: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: 60 * time.Second}
	fmt.Printf("正向 %s 发送请求...\n", url)

	resp, err := client.Do(req)
	if err != nil {
		log.Fatalf("错误: 发送请求失败: %v", err)
	}
	defer resp.Body.Close()

	// 4. 读取并打印响应结果
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("错误: 读取响应体失败: %v", err)
	}

	fmt.Println("\n--- 响应结果 ---")
	fmt.Printf("HTTP 状态码: %d\n", resp.StatusCode)

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, respBody, "", "  "); err == nil {
		fmt.Printf("响应体:\n%s\n", pretty.String())
	} else {
		fmt.Printf("响应体: %s\n", string(respBody))
	}
}

func splitAddresses(raw string) []string {
	addresses := []string{}
	for _, a := range strings.Split(raw, ",") {
		if a = strings.TrimSpace(a); a != "" {
			addresses = append(addresses, a)
		}
	}
	return addresses
}
