package usecase

// Export unexported functions for testing
var (
	VerifyTagClassifierForTest = verifyTagClassifier
)
