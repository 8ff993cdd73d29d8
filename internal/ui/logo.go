package ui

// logoText is the wordmark shown in the header.
const logoText = "◆ poziverse"
