package main

// sampleData is analyzed when no input file is given
const sampleData = `
From: user1@example.com
Subject: Urgent: System is down
Body: Our entire system is not accessible. This is critical for our business operations.

From: user2@example.com
Subject: API Integration Question
Body: I need help with integrating your API into our application. Can you provide documentation?

From: user1@example.com
Subject: Pricing inquiry
Body: What are your subscription plans and pricing options?

From: user3@example.com
Subject: Login verification issue
Body: I cannot verify my account and login to the system. Please help.

From: user2@example.com
Subject: Immediate assistance needed
Body: We are experiencing critical issues with our account access.
`
