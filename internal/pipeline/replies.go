package pipeline

// User-facing reply texts, pre-escaped for Telegram MarkdownV2. Failure
// replies are deliberately generic: the underlying collaborator errors go to
// the log, never to the chat.
const (
	welcomeText = `🤖 *Welcome to Linkbrief\!*

Send me an article link \(or an image with a caption containing one\) and I will reply with a short bullet summary\.

First, choose your summary language:`

	chooseLanguageText = `🌐 *Choose your summary language:*`

	replyUnauthorized        = `❌ You are not authorized to use this bot\.`
	replySelectLanguageFirst = `🌐 Please select a language first:`
	replyLanguageSet         = `🌍 Language is set to: %s\.`
	replyUnsupportedInput    = `✖️ Please send a message or caption containing a link\.`
	replyNoLinkFound         = `✖️ Couldn't detect a link\. Send a message or caption with an article URL\.`
	replyFetchFailed         = `⚠️ Couldn't read that article\. Try another link\.`
	replySummarizeFailed     = `⚠️ Summarization failed\. Please try again later\.`
	replyBusy                = `⏳ Still working on your previous link\. Send it again once I reply\.`
	replyFailed              = `❌ Failed\. Please try again\.`
)
