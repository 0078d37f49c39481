package service

// Textos fijos que ve el usuario.
const (
	TextGenericError   = "エラーが発生しました。"
	TextPong           = "Pong!"
	TextMemberNotFound = "メンバーが見つかりません。"
	TextAIFailure      = "AI応答中にエラーが発生しました"
	TextIPFailure      = "IP情報の取得に失敗しました。"
	TextQRFailure      = "QRコードの生成に失敗しました。"

	TriggerPhrase = "わらび"
	TriggerReply  = "なんやねん"
)
