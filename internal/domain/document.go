package domain

import "time"

// Document is a resume or supporting file uploaded by an account.
// The S3 object key lives in Object; everything else is Dynamo metadata.
type Document struct {
	DocumentID string    `json:"id" dynamodbav:"document_id"`
	AccountID  string    `json:"account_id" dynamodbav:"account_id"`
	Object     string    `json:"object" dynamodbav:"object"`
	Name       string    `json:"name" dynamodbav:"name"`
	Type       string    `json:"type" dynamodbav:"type"`
	Size       int64     `json:"size" dynamodbav:"size"`
	Hash       string    `json:"hash" dynamodbav:"hash"`
	Enable     bool      `json:"enable" dynamodbav:"enable"`
	CreatedAt  time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt  time.Time `json:"updated" dynamodbav:"updated_at"`
}
