package mailer

const bidderConfirmationTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px; background: #f9f9f9;">
  <div style="max-width: 600px; margin: auto; background: white; border-radius: 8px;">
    <div style="background: #004aad; color: white; padding: 20px; text-align: center;">
      <h2>Bid Confirmation</h2>
    </div>
    <div style="padding: 20px;">
      <p>Dear <strong>{{name}}</strong>,</p>
      <p>Thank you for placing your bid on <strong>{{brand}}</strong>. Your bid has been received and recorded successfully.</p>
      <p>Stay tuned, we will update you shortly.</p>
      <p style="margin-top: 20px;">The {{brand}} Team</p>
    </div>
    <div style="background: #f1f1f1; text-align: center; padding: 10px; font-size: 12px; color: #555;">
      &copy; {{year}} {{brand}}. All rights reserved.
    </div>
  </div>
</div>`

const adminNoticeTemplate = `<div style="font-family: Arial, sans-serif; padding: 20px; background: #f9f9f9;">
  <div style="max-width: 600px; margin: auto; background: white; border-radius: 8px;">
    <div style="background: #c0392b; color: white; padding: 20px; text-align: center;">
      <h2>New Bid Notification</h2>
    </div>
    <div style="padding: 20px;">
      <p>A new bid has been placed by:</p>
      <p><strong>{{name}}</strong></p>
    </div>
    <div style="background: #f1f1f1; text-align: center; padding: 10px; font-size: 12px; color: #555;">
      Automated email from {{brand}}
    </div>
  </div>
</div>`
